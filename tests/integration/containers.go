package integration

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hashicorp/vault/api"
	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	composeFile      = "../../docker-compose.deps.yml"
	vaultAddr        = "http://localhost:8200"
	vaultRootToken   = "root-token"
	vaultMountPath   = "secret"
	vaultSecretPath  = "travel-agent"
	startupTimeout   = 2 * time.Minute
	teardownDeadline = time.Minute
)

// InitDockerCompose brings up Postgres and Vault and stores VaultSecret under
// secret/travel-agent, where the app reads its database credentials.
type InitDockerCompose struct {
	stack       *compose.DockerCompose
	VaultSecret map[string]any
}

// Initialize starts the dependency stack and seeds Vault.
func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	stack, err := compose.NewDockerCompose(composeFile)
	if err != nil {
		return ctx, fmt.Errorf("load compose file: %w", err)
	}
	i.stack = stack

	err = stack.
		WaitForService("postgres", wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(startupTimeout)).
		WaitForService("vault", wait.ForHTTP("/v1/sys/health").
			WithPort("8200/tcp").
			WithStartupTimeout(startupTimeout)).
		Up(ctx, compose.Wait(true))
	if err != nil {
		return ctx, fmt.Errorf("start dependencies: %w", err)
	}

	return ctx, seedVault(ctx, i.VaultSecret)
}

// Close tears the stack down together with its volumes.
func (i *InitDockerCompose) Close() {
	if i.stack == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), teardownDeadline)
	defer cancel()

	if err := i.stack.Down(ctx, compose.RemoveOrphans(true), compose.RemoveVolumes(true)); err != nil {
		log.Printf("failed to stop dependency stack: %v", err)
	}
}

func seedVault(ctx context.Context, secret map[string]any) error {
	cfg := api.DefaultConfig()
	cfg.Address = vaultAddr

	client, err := api.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("create vault client: %w", err)
	}
	client.SetToken(vaultRootToken)

	if _, err := client.KVv2(vaultMountPath).Put(ctx, vaultSecretPath, secret); err != nil {
		return fmt.Errorf("seed vault secret: %w", err)
	}
	return nil
}
