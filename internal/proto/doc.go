// Package proto holds the generated messages and gRPC bindings of the
// gophauth.v1 API. The source lives in proto/gophauth/v1/auth.proto.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/gophauth --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/gophauth ../../proto/gophauth/v1/auth.proto
