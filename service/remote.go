package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kevin-chtw/tw_trainer/utils"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/structpb"
)

type remoteHandler func(context.Context, *structpb.Struct) (*structpb.Struct, error)

// Remote 服务器之间调用的分析服务，请求为 structpb.Struct，op 字段指定操作
type Remote struct {
	component.Base
	analyzer *Analyzer
	handlers map[string]remoteHandler
}

func NewRemote(analyzer *Analyzer) *Remote {
	return &Remote{
		analyzer: analyzer,
		handlers: make(map[string]remoteHandler),
	}
}

func bind[Req, Ack any](fn func(context.Context, *Req) (*Ack, error)) remoteHandler {
	return func(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
		req := new(Req)
		if err := utils.FromStruct(in, req); err != nil {
			return nil, err
		}
		ack, err := fn(ctx, req)
		if err != nil {
			return nil, err
		}
		return utils.ToStruct(ack)
	}
}

// Init 组件初始化
func (r *Remote) Init() {
	r.handlers["shanten"] = bind(r.analyzer.Shanten)
	r.handlers["waits"] = bind(r.analyzer.Waits)
	r.handlers["ukeire"] = bind(r.analyzer.Ukeire)
	r.handlers["rank"] = bind(r.analyzer.Rank)
	r.handlers["review"] = bind(r.analyzer.Review)
	r.handlers["scenarios"] = bind(r.analyzer.Scenarios)
	r.handlers["answer"] = bind(r.analyzer.Answer)
	r.handlers["simulate"] = bind(r.analyzer.Simulate)
}

// Message 处理分析请求
func (r *Remote) Message(ctx context.Context, req *structpb.Struct) (ack *structpb.Struct, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Errorf("panic recovered %s\n %s", rec, string(debug.Stack()))
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()
	if req == nil {
		return nil, errors.New("nil request")
	}
	op := req.GetFields()["op"].GetStringValue()
	logger.Log.Debugf("remote op %s", op)

	handler, ok := r.handlers[op]
	if !ok {
		return nil, fmt.Errorf("invalid op %q", op)
	}
	return handler(ctx, req)
}
