// Package bootstrap drives one configuration run of a template repository.
//
// A run scans the repository once, asks the six questions in a fixed order,
// substitutes each answer as soon as it is given, and finally removes the
// tool artifact and the template README before printing the success lines.
// Nothing is rolled back: a failed run leaves earlier substitutions in place
// and a re-run converges because placeholders that are gone stay gone.
package bootstrap
