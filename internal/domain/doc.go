// Package domain contains shared domain types used across the aggregate
// sub-packages. Aggregates live in sub-packages (domain/todo, domain/user).
// This root package holds sentinel errors, validation types, the domain event
// contract and the Action interface executed by the unit of work.
package domain
