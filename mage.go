//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput             = "gen"
	jetBotOutput          = "bot/gen"
	sqliteFileLocation    = "pateadores.sqlite"
	sqliteBotFileLocation = "bot.sqlite"
	serverBin             = "./bin/server"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, "cmd/main.go")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin)
}

// GenJet regenerates the table and model code from the sqlite files
func GenJet() error {
	if err := sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "run", "github.com/go-jet/jet/v2/cmd/jet",
		"-source", "sqlite", "-dsn", sqliteFileLocation, "-path", jetOutput); err != nil {
		return err
	}
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "run", "github.com/go-jet/jet/v2/cmd/jet",
		"-source", "sqlite", "-dsn", sqliteBotFileLocation, "-path", jetBotOutput)
}

// Test runs the whole test suite
func Test() error {
	return sh.Run("go", "test", "./...")
}

// Lint runs golangci-lint
func Lint() error {
	return sh.Run("golangci-lint", "run", "./...")
}
