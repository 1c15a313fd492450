package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePrefix(t *testing.T) {
	cases := map[string]string{
		"kit/K1/":   "kit/K1/%",
		"kit/K_1/":  `kit/K\_1/%`,
		"kit/100%/": `kit/100\%/%`,
		`kit/a\b/`:  `kit/a\\b/%`,
		"":          "%",
	}
	for in, want := range cases {
		assert.Equal(t, want, LikePrefix(in), in)
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: "5432", User: "kit", Password: "secret", DBName: "inventory", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=kit password=secret dbname=inventory sslmode=disable", cfg.DSN())
}
