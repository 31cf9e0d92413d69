package secretfile_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonwraymond/configsecret/secretfile"
)

func ExampleSource_Collect() {
	dir, _ := os.MkdirTemp("", "secrets")
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "redis.yaml")
	_ = os.WriteFile(path, []byte("username: redis\npassword: superpassword\n"), 0o600)

	src, err := secretfile.New(
		secretfile.Config{Prefix: "APP", KeyCase: secretfile.KeyCaseLower},
		secretfile.WithEnviron(secretfile.MapEnviron(map[string]string{
			"APP_SERVER_HOST": "127.0.0.1",
			"APP_REDIS_FILE":  path,
		})),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tree, err := src.Collect(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	user, _ := tree.Lookup("redis", "username")
	fmt.Println(tree.Keys())
	fmt.Println(user)
	// Output:
	// [redis]
	// "redis"
}

func ExampleResolve() {
	path, err := secretfile.Resolve("APP_REDIS_PASSWORD_FILE", secretfile.Config{Prefix: "APP"})
	fmt.Println(path, err)

	_, err = secretfile.Resolve("APP__FILE", secretfile.Config{Prefix: "APP"})
	fmt.Println(err)
	// Output:
	// REDIS.PASSWORD <nil>
	// secretfile: invalid path: variable APP__FILE: empty path segment
}
