package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indohomz/indohomz-backend/internal/utils"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"₹15,000/month", 15000},
		{"15000", 15000},
		{"₹ 25,000", 25000},
		{"50K", 50000},
		{"50k", 50000},
		{"1.2L", 120000},
		{"2l", 200000},
		{"₹1,20,000/month", 120000},
	}
	for _, tc := range cases {
		got, err := utils.ParsePrice(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.InDelta(t, tc.want, got, 0.001, "input %q", tc.in)
	}

	for _, bad := range []string{"", "call for price", "₹₹", "/month"} {
		_, err := utils.ParsePrice(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{
		"9876543210",
		"+91 98765 43210",
		"91-9876543210",
		"(91) 98765-43210",
		"6123456789",
	}
	for _, p := range valid {
		require.True(t, utils.ValidatePhoneNumber(p), "phone %q", p)
	}

	invalid := []string{
		"",
		"12345",
		"1234567890",  // starts below 6
		"98765432101", // 11 digits without country code
		"abcdefghij",
	}
	for _, p := range invalid {
		require.False(t, utils.ValidatePhoneNumber(p), "phone %q", p)
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	require.Equal(t, "9876543210", utils.NormalizePhoneNumber("+91 98765 43210"))
	require.Equal(t, "9876543210", utils.NormalizePhoneNumber("919876543210"))
	require.Equal(t, "9876543210", utils.NormalizePhoneNumber("9876543210"))
}

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cozy 2BHK in Koramangala!", "cozy-2bhk-in-koramangala"},
		{"  Spacious Villa  ", "spacious-villa"},
		{"PG near IT-Park (North)", "pg-near-it-park-north"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, utils.GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestSanitizeHTML(t *testing.T) {
	require.Equal(t, "&lt;script&gt;", utils.SanitizeHTML("<script>"))
	require.Equal(t, "a &amp; b", utils.SanitizeHTML("a & b"))
	require.Equal(t, "&quot;quoted&quot;", utils.SanitizeHTML(`"quoted"`))
	require.Equal(t, "", utils.SanitizeHTML(""))
	require.Equal(t, "plain text", utils.SanitizeHTML("plain text"))
}

func TestValidatePasswordStrength(t *testing.T) {
	require.NoError(t, utils.ValidatePasswordStrength("Str0ngPass"))
	require.ErrorIs(t, utils.ValidatePasswordStrength("Sh0rt"), utils.ErrPasswordTooShort)
	require.ErrorIs(t, utils.ValidatePasswordStrength("alllower1"), utils.ErrPasswordNoUppercase)
	require.ErrorIs(t, utils.ValidatePasswordStrength("ALLUPPER1"), utils.ErrPasswordNoLowercase)
	require.ErrorIs(t, utils.ValidatePasswordStrength("NoDigitsHere"), utils.ErrPasswordNoDigit)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := utils.HashPassword("Str0ngPass")
	require.NoError(t, err)
	require.NotEqual(t, "Str0ngPass", hash)
	require.True(t, utils.VerifyPassword("Str0ngPass", hash))
	require.False(t, utils.VerifyPassword("wrong", hash))
}
