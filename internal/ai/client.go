// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ai runs the advisory manuscript and metadata checks against a
// chat-completion model. Results are prose supplements attached to the
// report; they never become findings and never affect the risk verdict.
package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal surface the analyzers need from a chat-completion
// backend. It mirrors the CreateChatCompletion method of the OpenAI client
// so tests can substitute a fake.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ClientConfig configures the real chat-completion backend. BaseURL may
// point at any OpenAI-compatible endpoint, including a local one.
type ClientConfig struct {
	BaseURL string
	APIKey  string
}

// NewClient builds a real client from the configuration.
func NewClient(cfg ClientConfig) Client {
	transportCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		transportCfg.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(transportCfg)
}
