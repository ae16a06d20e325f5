package ports

// RowPolicyPort decides whether a table row belongs to the target
// population dataset.
type RowPolicyPort interface {
	Qualifies(row Node) bool
	Tag() string
}
