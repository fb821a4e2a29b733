// Package timelinev1 holds the timeline.v1 messages and the TimelineService
// stubs. The generators are pinned in tools.go:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go google.golang.org/grpc/cmd/protoc-gen-go-grpc
package timelinev1

//go:generate protoc --proto_path=../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative ../../timeline/v1/timeline.proto
