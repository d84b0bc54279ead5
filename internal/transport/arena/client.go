package arena

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/r3labs/sse/v2"
	backoff "gopkg.in/cenkalti/backoff.v1"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
)

const (
	maxResponseSize = 64 << 10
	maxEventSize    = 64 << 10

	defaultEventType = "message"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected arena response status")
	ErrStreamClosed     = errors.New("event stream closed by arena")
)

// Client talks to the arena: one event stream per battle and fire-and-forget play commands.
type Client struct {
	logger *slog.Logger

	baseURL      string
	httpClient   *http.Client
	streamClient *http.Client
}

func New(logger *slog.Logger, baseURL string, requestTimeout time.Duration) *Client {
	return &Client{
		logger:  logger.With("component", "arena"),
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		// the stream stays open for the whole battle, so it gets no client timeout
		streamClient: &http.Client{},
	}
}

// PutSymbol submits a move and returns the arena's response body.
func (that *Client) PutSymbol(ctx context.Context, battleID string, pos entity.Position) (string, error) {
	body, err := that.play(ctx, battleID, PlayRequest{Action: actionPutSymbol, Position: pos})
	if err != nil {
		return "", fmt.Errorf("failed to put symbol: %w", err)
	}

	return body, nil
}

// FlipTable concedes the battle.
func (that *Client) FlipTable(ctx context.Context, battleID string) error {
	if _, err := that.play(ctx, battleID, PlayRequest{Action: entity.TableFlipAction}); err != nil {
		return fmt.Errorf("failed to flip the table: %w", err)
	}

	return nil
}

func (that *Client) play(ctx context.Context, battleID string, request PlayRequest) (string, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal play request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, that.url("play", battleID), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build play request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send play request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read play response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return string(body), nil
}

// Subscribe opens the battle's event stream in the background. Signals arrive on Events();
// the channel is closed once the stream is over.
func (that *Client) Subscribe(ctx context.Context, battleID string) *Stream {
	ctx, cancel := context.WithCancel(ctx)

	stream := &Stream{
		ID:     uuid.NewString(),
		events: make(chan entity.StreamSignal),
		cancel: cancel,
	}

	log := that.logger.With("battleID", battleID, "stream", stream.ID)
	go stream.run(ctx, log, that.newSSEClient(that.url("start", battleID)))

	return stream
}

// newSSEClient - one client per subscription: the arena stream is never resumed, so reconnects are off.
func (that *Client) newSSEClient(streamURL string) *sse.Client {
	client := sse.NewClient(streamURL, sse.ClientMaxBufferSize(maxEventSize))
	client.Connection = that.streamClient
	client.ReconnectStrategy = &backoff.StopBackOff{}

	return client
}

func (that *Client) url(action, battleID string) string {
	return fmt.Sprintf("%s/tic-tac-toe/%s/%s", that.baseURL, action, url.PathEscape(battleID))
}

// Stream is one battle's server-sent event subscription.
type Stream struct {
	ID string

	events chan entity.StreamSignal
	cancel context.CancelFunc
	once   sync.Once
}

func (that *Stream) Events() <-chan entity.StreamSignal {
	return that.events
}

// Close releases the subscription. Calling it more than once is a no-op.
func (that *Stream) Close() error {
	that.once.Do(that.cancel)
	return nil
}

func (that *Stream) run(ctx context.Context, log *slog.Logger, client *sse.Client) {
	defer close(that.events)
	defer that.Close()

	log.Info("connecting", "url", client.URL)

	var refused error
	client.ResponseValidator = func(_ *sse.Client, resp *http.Response) error {
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			refused = fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)

			return refused
		}

		that.emit(ctx, entity.StreamSignal{Kind: entity.StreamOpen})

		return nil
	}

	err := client.SubscribeRawWithContext(ctx, func(msg *sse.Event) {
		if len(msg.Event) > 0 && string(msg.Event) != defaultEventType {
			log.Debug("skipping event", "type", string(msg.Event))
			return
		}

		if len(msg.Data) == 0 {
			return
		}

		raw := string(msg.Data)
		events, err := DecodeEvents(msg.Data)
		that.emit(ctx, entity.StreamSignal{Kind: entity.StreamMessage, Raw: raw, Events: events, Err: err})
	})

	switch {
	case refused != nil:
		err = refused
	case err == nil:
		err = ErrStreamClosed
	default:
		err = fmt.Errorf("failed to read stream: %w", err)
	}

	that.emit(ctx, entity.StreamSignal{Kind: entity.StreamError, Err: err})
}

// emit - hands a signal to the runner unless the subscription was closed meanwhile.
func (that *Stream) emit(ctx context.Context, signal entity.StreamSignal) bool {
	if ctx.Err() != nil {
		return false
	}

	select {
	case that.events <- signal:
		return true
	case <-ctx.Done():
		return false
	}
}
