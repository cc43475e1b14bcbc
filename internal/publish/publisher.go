// Package publish streams per-case results to an external collector over
// gRPC. The collector contract lives in a proto schema parsed at runtime
// and invoked with dynamic messages, so no generated stubs are compiled in
// and the schema can evolve without touching the build.
package publish

import (
	"context"
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/funvibe/reduct/internal/runner"
)

const collectorProtoFile = "collector.proto"

const collectorProto = `syntax = "proto3";

package reduct;

message CaseResult {
  string run_id = 1;
  string name = 2;
  bool passed = 3;
  string expected = 4;
  string actual = 5;
  string message = 6;
}

message PublishAck {
  bool ok = 1;
}

service Collector {
  rpc Publish(CaseResult) returns (PublishAck);
}
`

const publishMethodPath = "/reduct.Collector/Publish"

// Publisher holds one client connection and the parsed method descriptor.
type Publisher struct {
	conn  *grpc.ClientConn
	runID string
	md    *desc.MethodDescriptor
}

// Dial prepares a publisher for the given collector address. The connection
// is lazy; a collector that is down surfaces as an error on the first
// Publish, not here.
func Dial(target, runID string) (*Publisher, error) {
	md, err := publishMethod()
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dialing collector: %w", err)
	}

	return &Publisher{conn: conn, runID: runID, md: md}, nil
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}

// Publish sends one case result and waits for the ack.
func (p *Publisher) Publish(ctx context.Context, result runner.Result) error {
	req := buildRequest(p.md, p.runID, result)
	resp := dynamic.NewMessage(p.md.GetOutputType())

	if err := p.conn.Invoke(ctx, publishMethodPath, req, resp); err != nil {
		return fmt.Errorf("publishing %s: %w", result.Name, err)
	}
	return nil
}

// publishMethod parses the embedded schema and resolves the Publish method.
func publishMethod() (*desc.MethodDescriptor, error) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			collectorProtoFile: collectorProto,
		}),
	}

	fds, err := parser.ParseFiles(collectorProtoFile)
	if err != nil {
		return nil, fmt.Errorf("parsing collector schema: %w", err)
	}

	svc := fds[0].FindService("reduct.Collector")
	if svc == nil {
		return nil, fmt.Errorf("collector schema has no Collector service")
	}
	md := svc.FindMethodByName("Publish")
	if md == nil {
		return nil, fmt.Errorf("collector schema has no Publish method")
	}
	return md, nil
}

func buildRequest(md *desc.MethodDescriptor, runID string, result runner.Result) *dynamic.Message {
	message := ""
	if result.Err != nil {
		message = result.Err.Error()
	}

	req := dynamic.NewMessage(md.GetInputType())
	req.SetFieldByName("run_id", runID)
	req.SetFieldByName("name", result.Name)
	req.SetFieldByName("passed", result.Status == runner.StatusPassed)
	req.SetFieldByName("expected", result.Expected)
	req.SetFieldByName("actual", result.Actual)
	req.SetFieldByName("message", message)
	return req
}
