// Package authctx carries the authenticated employee through request contexts.
package authctx

import "context"

type employeeKey struct{}

// WithEmployeeID returns a copy of ctx bound to the given employee id.
func WithEmployeeID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, employeeKey{}, id)
}

// EmployeeID returns the employee bound to ctx, or 0 when the call is anonymous.
func EmployeeID(ctx context.Context) int64 {
	id, _ := ctx.Value(employeeKey{}).(int64)
	return id
}
