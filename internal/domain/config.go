package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Storage and public document field names.
const (
	FieldID  = "_id"
	FieldApp = "app"
	FieldEnv = "env"
)

// ConfigRecord is a raw stored document: an open-ended mapping of
// configuration keys to JSON-compatible values, keyed publicly by its
// "app" field. A nil record means the application is absent.
type ConfigRecord map[string]any

// ConfigView is the client-facing projection of a ConfigRecord. It is
// constructed per request and never persisted.
type ConfigView map[string]any

// AppName returns the record's application name, falling back to the
// stringified internal identifier when the "app" field is missing.
func (r ConfigRecord) AppName() string {
	if app, ok := r[FieldApp].(string); ok {
		return app
	}
	return identifierString(r[FieldID])
}

// View shapes the record for a client in the given environment: all
// fields are copied, the internal identifier and the application key are
// dropped, and the resolved environment name is set (overwriting any
// stored "env" field). An absent or empty record shapes to an empty view,
// not a view carrying only "env".
func (r ConfigRecord) View(env string) ConfigView {
	if len(r) == 0 {
		return ConfigView{}
	}

	view := make(ConfigView, len(r))
	for key, value := range r {
		if key == FieldID || key == FieldApp {
			continue
		}
		view[key] = value
	}

	view[FieldEnv] = env
	return view
}

func identifierString(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
