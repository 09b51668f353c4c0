// Package app implements the workbench service used by the CLI and REST front-ends.
package app
