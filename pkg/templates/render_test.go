package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Run("Success - Substitute double brace variables", func(t *testing.T) {
		out := Render("Hi {{name}}, are you still the {{role}}?", map[string]string{
			"name": "Ada",
			"role": "CTO",
		})
		assert.Equal(t, "Hi Ada, are you still the CTO?", out)
	})

	t.Run("Success - Substitute single brace variables", func(t *testing.T) {
		out := Render("Hi {name} from {company}", map[string]string{
			"name":    "Ada",
			"company": "Acme",
		})
		assert.Equal(t, "Hi Ada from Acme", out)
	})

	t.Run("Success - Case insensitive keys", func(t *testing.T) {
		out := Render("Hi {{Name}} and {{NAME}}", map[string]string{"name": "Ada"})
		assert.Equal(t, "Hi Ada and Ada", out)
	})

	t.Run("Success - Whitespace inside braces", func(t *testing.T) {
		out := Render("Hi {{ name }}", map[string]string{"name": "Ada"})
		assert.Equal(t, "Hi Ada", out)
	})

	t.Run("Success - Unmatched placeholders preserved", func(t *testing.T) {
		out := Render("Hi {{name}}, about {{missing}}", map[string]string{"name": "Ada"})
		assert.Equal(t, "Hi Ada, about {{missing}}", out)
	})

	t.Run("Success - Values inserted verbatim", func(t *testing.T) {
		out := Render("{{name}}", map[string]string{"name": "<b>Ada & Co</b>"})
		assert.Equal(t, "<b>Ada & Co</b>", out)
	})

	t.Run("Success - Value containing dollar sign is literal", func(t *testing.T) {
		out := Render("Budget: {{amount}}", map[string]string{"amount": "$1"})
		assert.Equal(t, "Budget: $1", out)
	})

	t.Run("Success - Every occurrence replaced", func(t *testing.T) {
		out := Render("{{name}} {{name}} {name}", map[string]string{"name": "Ada"})
		assert.Equal(t, "Ada Ada Ada", out)
	})

	t.Run("Success - Empty value replaces placeholder", func(t *testing.T) {
		out := Render("Hi {{name}}!", map[string]string{"name": ""})
		assert.Equal(t, "Hi !", out)
	})

	t.Run("Success - Value containing placeholder syntax stays verbatim", func(t *testing.T) {
		out := Render("Hi {{name}}, the {{role}}", map[string]string{
			"name": "{role}",
			"role": "CTO",
		})
		assert.Equal(t, "Hi {role}, the CTO", out)
	})

	t.Run("Success - Unclosed braces untouched", func(t *testing.T) {
		out := Render("Hi {{name} and {name", map[string]string{"name": "Ada"})
		assert.Equal(t, "Hi {Ada and {name", out)
	})
}

func TestVars(t *testing.T) {
	t.Run("Success - Builtins present", func(t *testing.T) {
		vars := Vars("Ada", "ada@acme.com", "CTO", "Acme", nil)
		assert.Equal(t, "Ada", vars["name"])
		assert.Equal(t, "ada@acme.com", vars["email"])
		assert.Equal(t, "CTO", vars["role"])
		assert.Equal(t, "Acme", vars["company"])
	})

	t.Run("Success - Empty company omitted", func(t *testing.T) {
		vars := Vars("Ada", "ada@acme.com", "CTO", "", nil)
		_, ok := vars["company"]
		assert.False(t, ok)
	})

	t.Run("Success - Custom fields lowercased", func(t *testing.T) {
		vars := Vars("Ada", "a@b.c", "CTO", "", map[string]string{"City": "Berlin"})
		assert.Equal(t, "Berlin", vars["city"])
	})

	t.Run("Success - Custom fields never shadow builtins", func(t *testing.T) {
		vars := Vars("Ada", "a@b.c", "CTO", "Acme", map[string]string{"name": "Hacker"})
		assert.Equal(t, "Ada", vars["name"])
	})
}
