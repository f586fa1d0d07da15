package models

// Customer is a row of the customers table. Fields tagged encrypted hold
// ciphertext once the repository has passed the row through the column converter.
type Customer struct {
	CustomerID     string `db:"customer_id"`
	DocumentType   string `db:"document_type"`
	DocumentNumber string `db:"document_number" encrypted:"true"`
	FullName       string `db:"full_name"`
	Email          string `db:"email" encrypted:"true"`
	AuditFields
}
