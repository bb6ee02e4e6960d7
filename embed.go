package embedded

import "embed"

//go:embed "migrations"
var ServerMigrations embed.FS

//go:embed "bot/migrations"
var BotMigrations embed.FS
