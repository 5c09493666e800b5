package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authforms/pkg/validator"
)

func TestIsName(t *testing.T) {
	t.Parallel()

	t.Run("accepts letters apostrophes and hyphens", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"O'Brien-Smith", "a", "Anne", "Mary-Jane", "D'Angelo", "-", "'"} {
			assert.True(t, validator.IsName(name), "expected valid name: %q", name)
		}
	})

	t.Run("rejects anything else without stripping", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"", "Bob2", "José", "Anne Marie", "Smith.", "Bob!", " Bob", "Bob\n", "Zoë"} {
			assert.False(t, validator.IsName(name), "expected invalid name: %q", name)
		}
	})
}

func TestIsEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid addresses", func(t *testing.T) {
		t.Parallel()
		valid := []string{
			"a@b.com",
			"john.doe@example.com",
			"user+tag@mail.example.co.uk",
			"a.b.c@b.com",
			"first-last@sub-domain.example.org",
			"1@2.3",
			"x!#$%&'*+-/=?^_`{|}~y@b.com",
			"josé@b.com",
		}
		for _, email := range valid {
			assert.True(t, validator.IsEmail(email), "expected valid email: %q", email)
		}
	})

	t.Run("wrong number of at signs", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{"abc.com", "a@@b.com", "a@b@c.com", "@", "@@"} {
			assert.False(t, validator.IsEmail(email), "expected invalid email: %q", email)
		}
	})

	t.Run("empty parts", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{"", "@b.com", "a@"} {
			assert.False(t, validator.IsEmail(email), "expected invalid email: %q", email)
		}
	})

	t.Run("local part dots and whitespace", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			".a@b.com",
			"a.@b.com",
			"a..b@b.com",
			"a b@b.com",
			"a\tb@b.com",
			"a b@b.com",
			"é.a@b.com",
			"a\vb@b.com",
			"ab\v@b.com",
			"\va@b.com",
			"a\u0085b@b.com",
			"a\ufeffb@b.com",
			"\ufeffab@b.com",
			"a\u2028b@b.com",
			"a\u3000b@b.com",
		}
		for _, email := range invalid {
			assert.False(t, validator.IsEmail(email), "expected invalid email: %q", email)
		}
	})

	t.Run("domain shape", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"a@b",
			"a@.b.com",
			"a@-b.com",
			"a@b-.com",
			"a@b.com.",
			"a@b.com-",
			"a@b..com",
			"a@b_c.com",
			"a@bü.com",
			"a@b .com",
		}
		for _, email := range invalid {
			assert.False(t, validator.IsEmail(email), "expected invalid email: %q", email)
		}
	})
}

func TestIsPassword(t *testing.T) {
	t.Parallel()

	t.Run("valid passwords", func(t *testing.T) {
		t.Parallel()
		valid := []string{
			"Passw0rd",
			"Abcdefg",
			"Abcdef1",
			"aB" + strings.Repeat("1", 19),
		}
		for _, password := range valid {
			assert.True(t, validator.IsPassword(password), "expected valid password: %q", password)
		}
	})

	t.Run("length bounds are inclusive", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.IsPassword("Abcde1"))
		assert.True(t, validator.IsPassword("Abcdef1"))
		assert.True(t, validator.IsPassword("Ab"+strings.Repeat("c", 19)))
		assert.False(t, validator.IsPassword("Ab"+strings.Repeat("c", 20)))
	})

	t.Run("invalid passwords", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"",
			"P1",
			"password",
			"PASSWORD1",
			"Pass1!",
			"Passw0rd!",
			"Pass word1",
			"Passwörd1",
			"12345678",
		}
		for _, password := range invalid {
			assert.False(t, validator.IsPassword(password), "expected invalid password: %q", password)
		}
	})
}

func TestValidateField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kind   validator.FieldKind
		value  string
		valid  bool
		reason string
	}{
		{"valid name", validator.FieldName, "O'Brien-Smith", true, ""},
		{"invalid name", validator.FieldName, "Bob2", false, validator.MsgInvalidName},
		{"empty name", validator.FieldName, "", false, validator.MsgInvalidName},
		{"valid email", validator.FieldEmail, "a@b.com", true, ""},
		{"invalid email", validator.FieldEmail, "a@@b.com", false, validator.MsgInvalidEmail},
		{"valid password", validator.FieldPassword, "Passw0rd", true, ""},
		{"invalid password", validator.FieldPassword, "Pass1!", false, validator.MsgInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validator.ValidateField(tt.kind, tt.value)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		inputs := []string{"", "a@b.com", "Passw0rd", "Bob2", "a@b-.com", "O'Brien"}
		kinds := []validator.FieldKind{validator.FieldName, validator.FieldEmail, validator.FieldPassword}
		for _, kind := range kinds {
			for _, in := range inputs {
				assert.Equal(t, validator.ValidateField(kind, in), validator.ValidateField(kind, in))
			}
		}
	})

	t.Run("unknown kind is invalid", func(t *testing.T) {
		t.Parallel()
		res := validator.ValidateField(validator.FieldKind(42), "anything")
		assert.False(t, res.Valid)
		assert.NotEmpty(t, res.Reason)
	})
}

func TestParseFieldKind(t *testing.T) {
	t.Parallel()

	kind, err := validator.ParseFieldKind("Email")
	require.NoError(t, err)
	assert.Equal(t, validator.FieldEmail, kind)

	kind, err = validator.ParseFieldKind("surname")
	require.NoError(t, err)
	assert.Equal(t, validator.FieldName, kind)

	_, err = validator.ParseFieldKind("phone")
	assert.ErrorIs(t, err, validator.ErrUnknownFieldKind)
}

func TestFieldRules(t *testing.T) {
	t.Parallel()

	t.Run("apply collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.ValidName("firstname", "Bob2", validator.MsgInvalidFirstname),
			validator.ValidEmail("email", "abc.com"),
			validator.ValidPassword("password", "Passw0rd"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"firstname", "email"}, verrs.Fields())
		assert.Equal(t, validator.MsgInvalidFirstname, verrs.First("firstname"))
		assert.False(t, verrs.Has("password"))
	})

	t.Run("apply first stops at the first failure", func(t *testing.T) {
		t.Parallel()
		err := validator.ApplyFirst(
			validator.ValidEmail("email", "a@b"),
			validator.ValidPassword("password", "P1"),
		)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "email", verrs[0].Field)
		assert.Equal(t, validator.MsgInvalidEmail, verrs[0].Message)
	})

	t.Run("no error when all rules pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.ApplyFirst(
			validator.ValidEmail("email", "a@b.com"),
			validator.ValidPassword("password", "Passw0rd"),
		))
	})
}
