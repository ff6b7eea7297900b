package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryPrefix(t *testing.T) {
	assert.Equal(t, "Tech skills", TechSkills.Prefix())
	assert.Equal(t, "Soft skills", SoftSkills.Prefix())
}
