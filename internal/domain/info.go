package domain

// Info keys, in the order User.Info emits them.
const (
	InfoName          = "name"
	InfoEmail         = "email"
	InfoAge           = "age"
	InfoStatus        = "status"
	InfoLoginAttempts = "loginAttempts"
)

// InfoField is a single key/value pair of Info. Value is a string or an int.
type InfoField struct {
	Key   string
	Value any
}

// Info is an ordered view of a user's fields.
type Info []InfoField

// Get returns the value stored under key.
func (i Info) Get(key string) (any, bool) {
	for _, f := range i {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys lists the keys in order.
func (i Info) Keys() []string {
	keys := make([]string, len(i))
	for idx, f := range i {
		keys[idx] = f.Key
	}
	return keys
}

// Map copies the fields into an unordered map.
func (i Info) Map() map[string]any {
	m := make(map[string]any, len(i))
	for _, f := range i {
		m[f.Key] = f.Value
	}
	return m
}
