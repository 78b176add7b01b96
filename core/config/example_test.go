package config_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmc/grizzled-go/core/config"
)

func ExampleLoadFromString() {
	cfg, err := config.LoadFromString(`
[server]
host = example.org
port: 8080
url = http://${host}:${port}/
banner -> ${not} substituted
`, config.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}

	url, _ := cfg.Get("server", "url")
	banner, _ := cfg.Get("server", "banner")
	fmt.Println(url)
	fmt.Println(banner)
	// Output:
	// http://example.org:8080/
	// ${not} substituted
}

func ExampleConfiguration_Resolve() {
	cfg, _ := config.LoadFromString("[a]\nx = ${missing}\n", config.Options{Strict: true})

	_, _, err := cfg.Resolve("a", "x")
	fmt.Println(err)
	// Output:
	// variable not found: missing
}

func ExampleConfiguration_Set() {
	base, _ := config.LoadFromString("[db]\nhost = localhost\n", config.Options{})
	derived, _ := base.Set("db", "host", "db.internal")

	a, _ := base.Get("db", "host")
	b, _ := derived.Get("db", "host")
	fmt.Println(a, b)
	// Output:
	// localhost db.internal
}

func ExampleGetAs() {
	cfg, _ := config.LoadFromString("[net]\nport = 8080\n", config.Options{})

	port, ok, err := config.GetAs(cfg, "net", "port", config.IntConverter)
	fmt.Println(port+1, ok, err)
	// Output:
	// 8081 true <nil>
}

func ExampleConfiguration_WriteTo() {
	cfg, _ := config.LoadFromString("[b]\ny -> ${raw}\n[a]\nx = 1\n", config.Options{})
	cfg.WriteTo(os.Stdout)
	// Output:
	// [a]
	// x = 1
	//
	// [b]
	// y -> ${raw}
}

func ExampleSectionsFromTOML() {
	defaults, _ := config.SectionsFromTOML(strings.NewReader("[server]\nport = 80\n"))
	cfg, _ := config.LoadFromString("[server]\nhost = h\n", config.Options{Predefined: defaults})

	fmt.Println(cfg.OptionNames("server"))
	// Output:
	// [host port]
}
