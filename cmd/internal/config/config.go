package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	defaultSSMPrefix = "/employeedocs/prod/"
	defaultRegion    = "us-east-2"
)

type Config struct {
	Env       string
	Port      string
	DBDriver  string
	DBDSN     string
	BodyLimit string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ParameterStore is the subset of the SSM client used to load variables.
type ParameterStore interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// Load exports the environment (SSM Parameter Store in production, .env
// otherwise) and reads the configuration from it.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(getEnv("AWS_REGION", defaultRegion)))
		if err != nil {
			return nil, err
		}

		if err = LoadParameters(ctx, ssm.NewFromConfig(awsCfg), getEnv("SSM_PREFIX", defaultSSMPrefix)); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FromEnv(), nil
}

// LoadParameters exports every parameter under prefix as an environment
// variable named after the rest of its path.
func LoadParameters(ctx context.Context, store ParameterStore, prefix string) error {
	paginator := ssm.NewGetParametersByPathPaginator(store, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return err
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), prefix)
			if err = os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return err
			}
			count++
		}
	}
	log.Debugf("loaded %d prod environment variables", count)
	return nil
}

func FromEnv() *Config {
	return &Config{
		Env:       os.Getenv("GO_ENV"),
		Port:      getEnv("PORT", "7070"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBDSN:     getEnv("DB_DSN", "database.db"),
		BodyLimit: getEnv("BODY_LIMIT", "2M"),
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
