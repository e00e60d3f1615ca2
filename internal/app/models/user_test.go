package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillList(t *testing.T) {
	t.Run("splits stored skills", func(t *testing.T) {
		user := &User{Skills: "go,sql,docker"}
		assert.Equal(t, []string{"go", "sql", "docker"}, user.SkillList())
	})

	t.Run("trims whitespace and drops empties", func(t *testing.T) {
		user := &User{Skills: " go , ,sql,"}
		assert.Equal(t, []string{"go", "sql"}, user.SkillList())
	})

	t.Run("empty storage yields an empty list", func(t *testing.T) {
		user := &User{}
		assert.Empty(t, user.SkillList())

		user.Skills = "   "
		assert.Empty(t, user.SkillList())
	})
}

func TestJoinSkills(t *testing.T) {
	assert.Equal(t, "go,sql", JoinSkills([]string{" go ", "", "sql"}))
	assert.Equal(t, "", JoinSkills(nil))

	// Round trip through storage and back
	user := &User{Skills: JoinSkills([]string{"go", "sql"})}
	assert.Equal(t, []string{"go", "sql"}, user.SkillList())
}
