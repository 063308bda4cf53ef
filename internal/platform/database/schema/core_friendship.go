package schema

// CoreFriendshipTable represents the 'core.friendship' table.
// Each friendship is stored as two directed rows.
type CoreFriendshipTable struct {
	Table     string
	UserID    string
	FriendID  string
	CreatedAt string
}

// CoreFriendship is the schema definition for core.friendship
var CoreFriendship = CoreFriendshipTable{
	Table:     "core.friendship",
	UserID:    "userid",
	FriendID:  "friendid",
	CreatedAt: "createdat",
}
