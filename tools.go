//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Code generators used by this module:
// - github.com/pressly/goose/v3/cmd/goose (migrations, see go.mod tool directive)
// - google.golang.org/protobuf/cmd/protoc-gen-go (pkg/api/classifierv1)
// - google.golang.org/grpc/cmd/protoc-gen-go-grpc (pkg/api/classifierv1)
