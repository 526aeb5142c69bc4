// Command infra is the CDK entrypoint. It reads the deployment config, builds
// the topology graph for the domain, materializes it into CDK stacks, and
// synthesizes the cloud assembly for `cdk deploy` / `cdk destroy`.
//
// Account and region come from the ambient CDK environment
// (CDK_DEFAULT_ACCOUNT / CDK_DEFAULT_REGION); the certificate region is pinned
// by the topology and is not configurable here.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/montevideolabs-org/blog-webapp/infra"
	"github.com/montevideolabs-org/blog-webapp/pkg/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath, domain, stackName string

	flag.StringVar(&configPath, "config", "deploy.yaml", "deployment config file")
	flag.StringVar(&domain, "domain", "", "deployment domain (overrides config)")
	flag.StringVar(&stackName, "stack-name", "", "stack name (overrides config)")
	flag.Parse()

	cfg, err := resolveConfig(configPath, domain, stackName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "infra: %v\n", err)
		return 2
	}

	defer jsii.Close()

	app := awscdk.NewApp(nil)
	if _, err := infra.NewSite(app, &infra.SiteProps{
		Domain:    cfg.Domain,
		StackName: cfg.StackName,
		Env:       ambientEnv(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "infra: %v\n", err)
		return 1
	}

	app.Synth(nil)
	return 0
}

// resolveConfig loads the config file when present and applies flag
// overrides. Running with only -domain and no file is allowed.
func resolveConfig(path, domain, stackName string) (*config.Deployment, error) {
	cfg := &config.Deployment{}
	if _, err := os.Stat(path); err == nil {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	} else if domain == "" {
		return nil, fmt.Errorf("config file %s not found and no -domain given", path)
	}

	if domain != "" {
		cfg.Domain = domain
	}
	if stackName != "" {
		cfg.StackName = stackName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ambientEnv() *awscdk.Environment {
	account := os.Getenv("CDK_DEFAULT_ACCOUNT")
	region := os.Getenv("CDK_DEFAULT_REGION")
	if account == "" && region == "" {
		return nil
	}

	env := &awscdk.Environment{}
	if account != "" {
		env.Account = jsii.String(account)
	}
	if region != "" {
		env.Region = jsii.String(region)
	}
	return env
}
