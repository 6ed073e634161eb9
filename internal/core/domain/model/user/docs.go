// Package user contains the back-office User aggregate. Password hashing and
// token issuance are application concerns; the aggregate only stores the hash.
package user
