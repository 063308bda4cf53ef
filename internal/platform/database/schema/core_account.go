package schema

// CoreAccountTable represents the 'core.account' table
type CoreAccountTable struct {
	Table     string
	ID        string
	Email     string
	Login     string
	Name      string
	Birthday  string
	CreatedAt string

	// Sequence issues user identifiers.
	Sequence string
}

// CoreAccount is the schema definition for core.account
var CoreAccount = CoreAccountTable{
	Table:     "core.account",
	ID:        "id",
	Email:     "email",
	Login:     "login",
	Name:      "name",
	Birthday:  "birthday",
	CreatedAt: "createdat",
	Sequence:  "core.account_id_seq",
}

// Columns returns all standard column names
func (t CoreAccountTable) Columns() []string {
	return []string{t.ID, t.Email, t.Login, t.Name, t.Birthday}
}
