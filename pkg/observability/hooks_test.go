package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnSizeStart(ctx, "HF")
	p.OnSizeComplete(ctx, "HF", 3, time.Millisecond, nil)
	p.OnRenderStart(ctx, "plan", []string{"svg"})
	p.OnRenderComplete(ctx, "plan", []string{"svg"}, time.Millisecond, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/api/v1/size")
	h.OnResponse(ctx, "POST", "/api/v1/size", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should not replace registered hooks")
	}

	SetHTTPHooks(nil)
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("SetHTTPHooks(nil) should keep the no-op hooks")
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }

type testHTTPHooks struct{ NoopHTTPHooks }
