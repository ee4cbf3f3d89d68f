package config

import (
	"context"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	pages [][]types.Parameter
	calls int
}

func (f *fakeStore) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	out := &ssm.GetParametersByPathOutput{Parameters: f.pages[f.calls]}
	f.calls++
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_DSN", "BODY_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "database.db", cfg.DBDSN)
	assert.Equal(t, "2M", cfg.BodyLimit)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")

	cfg := FromEnv()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
}

func TestLoadParameters_ExportsEveryPage(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("PORT", "")

	store := &fakeStore{pages: [][]types.Parameter{
		{{Name: aws.String("/employeedocs/prod/DB_DSN"), Value: aws.String("host=db")}},
		{{Name: aws.String("/employeedocs/prod/PORT"), Value: aws.String("9090")}},
	}}

	require.NoError(t, LoadParameters(context.Background(), store, "/employeedocs/prod/"))
	assert.Equal(t, 2, store.calls)
	assert.Equal(t, "host=db", os.Getenv("DB_DSN"))
	assert.Equal(t, "9090", os.Getenv("PORT"))
}
