// Package classifierv1 holds the Go bindings for api/proto/classifier/v1.
// The .pb.go files are produced by protoc-gen-go and protoc-gen-go-grpc
// (listed in tools.go); run go generate after editing the .proto.
package classifierv1

//go:generate protoc -I ../../../api/proto --go_out=../../.. --go_opt=module=github.com/heartmarshall/segmentbench --go-grpc_out=../../.. --go-grpc_opt=module=github.com/heartmarshall/segmentbench classifier/v1/classifier.proto
