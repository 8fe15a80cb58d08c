// Command nextvfs is the CLI entry point for the in-process Next.js-style
// dev server: it exposes route/config/tailwind inspection and the dev
// server itself over a real project directory, mirrored into the VFS by
// internal/watch.
package main

import "github.com/nextdev-go/nextvfs/cmd/nextvfs/commands"

func main() {
	commands.Execute()
}
