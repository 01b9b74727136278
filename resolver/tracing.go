/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package resolver

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/gid/apis"
)

// Span names and attribute keys emitted by the tracing resolver.
const (
	SpanResolve     = "gid.resolve"
	SpanResolveMany = "gid.resolve_many"

	AttrApp        = "gid.app"
	AttrModelType  = "gid.model_type"
	AttrModelID    = "gid.model_id"
	AttrMatched    = "gid.matched"
	AttrConstraint = "gid.constraint_size"
	AttrCount      = "gid.count"
	AttrResolved   = "gid.resolved"
)

// NewTracing wraps next so that every resolution runs inside a span.
// If tracer is nil, next is returned unchanged.
func NewTracing(next apis.Resolver, tracer trace.Tracer) apis.Resolver {
	if tracer == nil || next == nil {
		return next
	}
	return &tracing{next: next, tracer: tracer}
}

type tracing struct {
	next   apis.Resolver
	tracer trace.Tracer
}

// Resolve implements apis.Resolver.
func (t *tracing) Resolve(ctx context.Context, id apis.GlobalID, only apis.Constraint) (any, error) {
	ctx, span := t.tracer.Start(ctx, SpanResolve)
	defer span.End()

	if id != nil {
		span.SetAttributes(
			attribute.String(AttrApp, id.App()),
			attribute.String(AttrModelType, id.ModelType()),
			attribute.String(AttrModelID, id.ModelID()),
		)
	}
	span.SetAttributes(attribute.Int(AttrConstraint, len(only)))

	rec, err := t.next.Resolve(ctx, id, only)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Bool(AttrMatched, rec != nil))
	span.SetStatus(codes.Ok, "")
	return rec, nil
}

// ResolveMany implements apis.Resolver.
func (t *tracing) ResolveMany(ctx context.Context, ids []apis.GlobalID, only apis.Constraint) ([]any, error) {
	ctx, span := t.tracer.Start(ctx, SpanResolveMany)
	defer span.End()

	span.SetAttributes(
		attribute.Int(AttrCount, len(ids)),
		attribute.Int(AttrConstraint, len(only)),
	)

	recs, err := t.next.ResolveMany(ctx, ids, only)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int(AttrResolved, len(recs)))
	span.SetStatus(codes.Ok, "")
	return recs, nil
}
