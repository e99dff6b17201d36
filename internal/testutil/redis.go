package testutil

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// StartRedis launches a temporary Redis container and returns its URL plus
// a cleanup function.
func StartRedis(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()

	containerName := "storefront-int-" + uuid.NewString()
	runArgs := []string{
		"run", "--rm", "-d",
		"-P",
		"--name", containerName,
		"redis:7-alpine",
	}

	if err := exec.CommandContext(ctx, "docker", runArgs...).Run(); err != nil {
		t.Fatalf("start redis container: %v", err)
	}

	cleanup := func() {
		_ = exec.Command("docker", "stop", containerName).Run()
	}

	hostPort := waitForPort(ctx, t, containerName, "6379/tcp")
	url := fmt.Sprintf("redis://localhost:%s/0", hostPort)

	waitForRedis(ctx, t, url)

	return url, cleanup
}

func waitForRedis(ctx context.Context, t *testing.T, url string) {
	t.Helper()

	opt, err := goredis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse redis url: %v", err)
	}

	deadline := time.Now().Add(30 * time.Second)
	for {
		client := goredis.NewClient(opt)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		_ = client.Close()
		if err == nil {
			return
		}

		if time.Now().After(deadline) {
			t.Fatalf("timeout connecting to redis: %v", err)
		}

		select {
		case <-ctx.Done():
			t.Fatalf("context cancelled connecting to redis: %v", ctx.Err())
		case <-time.After(500 * time.Millisecond):
		}
	}
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
