// Package validation checks scripts and configuration before they are used.
//
// Struct tag validation uses the validator library and reports fields by
// their yaml names, so messages point at the document a user wrote:
//
//	type Step struct {
//	    Action string `yaml:"action" validate:"required,oneof=open event"`
//	}
//	err := validation.Validate(step)
//
// Programmatic validation collects several failures before reporting:
//
//	v := validation.New()
//	v.Required("name", name).AbsoluteURL("url", url)
//	err := v.Validate()
package validation
