// Package domain contains the value objects and entities of the registry:
// users, their profiles, roles and stored images. Entities enforce their field
// invariants on construction and mutation and return errors instead of
// panicking. They reference each other only by identifier and are free of
// persistence concerns.
package domain
