// Package train defines how branch names encode membership in a PR train
// and resolves the ordered chain of steps a branch belongs to.
//
// A train is a set of branches sharing a root, each ending in a numeric step
// segment (feature/login/1, feature/login/2, ...). The steps are merged into
// one another in order and finally into <root>/combined.
package train
