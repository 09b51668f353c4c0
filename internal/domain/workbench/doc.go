// Package workbench declares the application contract shared by the CLI and REST front-ends.
package workbench
