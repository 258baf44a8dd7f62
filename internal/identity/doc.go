// Package identity defines owner addresses and the wallet's owner roster.
// The roster is fixed at construction: it preserves construction order,
// rejects duplicates, and answers membership queries. There is no add,
// remove or replace.
package identity
