package ident_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tangzhangming/topy/internal/ident"
)

func TestNormalize_GlyphToken(t *testing.T) {
	assert.Equal(t, "alpha", ident.Normalize(`\[Alpha]`))
	assert.Equal(t, "beta", ident.Normalize(`\[Beta]`))
	// 开放词表，不限于希腊字母
	assert.Equal(t, "lambda", ident.Normalize(`\[Lambda]`))
	assert.Equal(t, "alpha2", ident.Normalize(`\[Alpha]2`))
	assert.Equal(t, "xalpha", ident.Normalize(`x\[Alpha]`))
}

func TestNormalize_UnicodeLetter(t *testing.T) {
	assert.Equal(t, "alpha", ident.Normalize("α"))
	assert.Equal(t, "omega", ident.Normalize("ω"))
	assert.Equal(t, "alpha_x", ident.Normalize("α_x"))
}

func TestNormalize_AsciiPassthrough(t *testing.T) {
	assert.Equal(t, "x", ident.Normalize("x"))
	assert.Equal(t, "xMax", ident.Normalize("xMax"))
	assert.Equal(t, "x2", ident.Normalize("x2"))
	assert.Equal(t, "_tmp", ident.Normalize("_tmp"))
}

func TestNormalize_IllegalChars(t *testing.T) {
	// $ 对 Python 标识符非法，剔除
	assert.Equal(t, "myvar", ident.Normalize("my$var"))
	assert.Equal(t, "xy", ident.Normalize("x$y"))
}

func TestNormalize_LeadingDigit(t *testing.T) {
	assert.Equal(t, "_2x", ident.Normalize("2x"))
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "_", ident.Normalize(""))
	assert.Equal(t, "_", ident.Normalize("$"))
}

func TestNormalizeWith_Snake(t *testing.T) {
	assert.Equal(t, "my_var", ident.NormalizeWith("myVar", ident.Snake))
	assert.Equal(t, "x_max", ident.NormalizeWith("xMax", ident.Snake))
	assert.Equal(t, "alpha", ident.NormalizeWith(`\[Alpha]`, ident.Snake))
}

func TestParseStyle(t *testing.T) {
	assert.Equal(t, ident.Snake, ident.ParseStyle("snake"))
	assert.Equal(t, ident.Preserve, ident.ParseStyle("preserve"))
	assert.Equal(t, ident.Preserve, ident.ParseStyle(""))
}
