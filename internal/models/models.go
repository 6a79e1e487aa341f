package models

// All lists every persisted entity in migration order: referenced tables first.
func All() []any {
	return []any{
		&User{},
		&Group{},
		&UserGroup{},
		&Profile{},
	}
}
