package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// converseAPI - часть клиента Bedrock, которая нужна транспорту
type converseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// BedrockTransport генерирует отчет через Bedrock Converse API
type BedrockTransport struct {
	client  converseAPI
	modelID string
}

// BedrockOptions - параметры подключения к Bedrock
type BedrockOptions struct {
	Region          string
	ModelID         string
	AccessKeyID     string
	SecretAccessKey string
}

// NewBedrockTransport загружает AWS конфигурацию; статические ключи используются, только если заданы оба
func NewBedrockTransport(ctx context.Context, opts BedrockOptions) (*BedrockTransport, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newBedrockTransport(bedrockruntime.NewFromConfig(cfg), opts.ModelID), nil
}

func newBedrockTransport(client converseAPI, modelID string) *BedrockTransport {
	return &BedrockTransport{client: client, modelID: modelID}
}

// Complete отправляет prompt одним сообщением пользователя
func (t *BedrockTransport) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := t.client.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(t.modelID),
		System: []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: systemPrompt},
		},
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: prompt},
				},
			},
		},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(600),
			Temperature: aws.Float32(0.1),
			TopP:        aws.Float32(0.8),
		},
	})
	if err != nil {
		return "", fmt.Errorf("bedrock converse: %w", err)
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", ErrEmptyResponse
	}
	var b strings.Builder
	for _, block := range msg.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			b.WriteString(text.Value)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
