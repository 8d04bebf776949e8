package domain

// OperatorRole enumerates staff roles.
type OperatorRole string

const (
	RoleAdmin    OperatorRole = "admin"
	RoleOperator OperatorRole = "operator"
)

// Operator is the authenticated staff user acting on tickets. One operator
// exists per session; its identity is attached to messages it sends.
type Operator struct {
	ID     string
	Name   string
	Email  string
	Role   OperatorRole
	Avatar string
}
