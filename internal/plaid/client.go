// Package plaid wraps the Plaid API for linking bank items and pulling
// their transactions.
package plaid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budgethero/internal/models"

	"github.com/plaid/plaid-go/v20/plaid"
)

const (
	dateLayout = "2006-01-02"
	pageSize   = int32(500)
)

var (
	ErrMissingClientID    = errors.New("plaid client ID is required")
	ErrMissingSecret      = errors.New("plaid secret is required")
	ErrInvalidEnvironment = errors.New("invalid Plaid environment: must be sandbox or production")
	ErrInvalidDateRange   = errors.New("start date must be before end date")
)

// Config holds Plaid API configuration
type Config struct {
	ClientID    string
	Secret      string
	Environment string // sandbox or production
	ClientName  string
	RedirectURI string
}

// Validate ensures all required fields are present
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	if c.Secret == "" {
		return ErrMissingSecret
	}
	if c.Environment != "sandbox" && c.Environment != "production" {
		return ErrInvalidEnvironment
	}
	return nil
}

// Client talks to Plaid on behalf of all users; access tokens are passed per call
type Client struct {
	api         *plaid.APIClient
	logger      *slog.Logger
	retryOpts   RetryOptions
	clientName  string
	redirectURI string
}

// NewClient creates a new Plaid client with the given configuration
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	configuration.AddDefaultHeader("PLAID-SECRET", cfg.Secret)

	switch cfg.Environment {
	case "sandbox":
		configuration.UseEnvironment(plaid.Sandbox)
	case "production":
		configuration.UseEnvironment(plaid.Production)
	}

	clientName := cfg.ClientName
	if clientName == "" {
		clientName = "BudgetHero"
	}

	return &Client{
		api:         plaid.NewAPIClient(configuration),
		logger:      logger.With("component", "plaid"),
		retryOpts:   DefaultRetryOptions(),
		clientName:  clientName,
		redirectURI: cfg.RedirectURI,
	}, nil
}

// CreateLinkToken creates a Link token for the given user
func (c *Client) CreateLinkToken(ctx context.Context, userID string) (string, error) {
	user := plaid.LinkTokenCreateRequestUser{
		ClientUserId: userID,
	}

	request := plaid.NewLinkTokenCreateRequest(
		c.clientName,
		"en",
		[]plaid.CountryCode{plaid.COUNTRYCODE_US},
		user,
	)
	request.SetProducts([]plaid.Products{plaid.PRODUCTS_TRANSACTIONS})
	if c.redirectURI != "" {
		request.SetRedirectUri(c.redirectURI)
	}

	resp, _, err := c.api.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*request).Execute()
	if err != nil {
		return "", wrapPlaidError("failed to create link token", err)
	}

	return resp.GetLinkToken(), nil
}

// ExchangePublicToken swaps a Link public token for an access token and item ID
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (string, string, error) {
	request := plaid.NewItemPublicTokenExchangeRequest(publicToken)
	resp, _, err := c.api.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*request).Execute()
	if err != nil {
		return "", "", wrapPlaidError("failed to exchange public token", err)
	}

	return resp.GetAccessToken(), resp.GetItemId(), nil
}

// GetTransactions pages through posted transactions between the two dates.
// Pending transactions are left out.
func (c *Client) GetTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time) ([]models.ParsedTransaction, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	c.logger.InfoContext(ctx, "Fetching transactions from Plaid",
		"start_date", startDate.Format(dateLayout),
		"end_date", endDate.Format(dateLayout))

	var all []plaid.Transaction
	offset := int32(0)

	for {
		var page []plaid.Transaction

		retryErr := WithRetry(ctx, func() error {
			request := plaid.NewTransactionsGetRequest(
				accessToken,
				startDate.Format(dateLayout),
				endDate.Format(dateLayout),
			)
			request.SetOptions(plaid.TransactionsGetRequestOptions{
				Count:  plaid.PtrInt32(pageSize),
				Offset: plaid.PtrInt32(offset),
			})

			resp, _, err := c.api.PlaidApi.TransactionsGet(ctx).TransactionsGetRequest(*request).Execute()
			if err != nil {
				plaidErr := extractPlaidError(err)
				if plaidErr == nil {
					return fmt.Errorf("failed to fetch transactions: %w", err)
				}
				if plaidErr.ErrorCode == "RATE_LIMIT_EXCEEDED" {
					c.logger.WarnContext(ctx, "Rate limit hit, will retry", "error", plaidErr.ErrorMessage)
					return fmt.Errorf("%w: %s", ErrRateLimit, plaidErr.ErrorMessage)
				}
				return &RetryableError{Err: wrapPlaidError("failed to fetch transactions", err), Retryable: false}
			}

			page = resp.GetTransactions()
			c.logger.DebugContext(ctx, "Fetched transaction page",
				"count", len(page),
				"offset", offset,
				"total", resp.GetTotalTransactions())
			return nil
		}, c.retryOpts)
		if retryErr != nil {
			return nil, retryErr
		}

		all = append(all, page...)
		if len(page) < int(pageSize) {
			break
		}
		offset += pageSize
	}

	transactions := make([]models.ParsedTransaction, 0, len(all))
	for _, pt := range all {
		txn, ok := mapTransaction(pt)
		if !ok {
			c.logger.WarnContext(ctx, "Skipping Plaid transaction",
				"transaction_id", pt.GetTransactionId(),
				"date", pt.GetDate(),
				"pending", pt.GetPending())
			continue
		}
		transactions = append(transactions, txn)
	}

	c.logger.InfoContext(ctx, "Fetched all transactions", "count", len(transactions))
	return transactions, nil
}

func extractPlaidError(err error) *plaid.PlaidError {
	plaidErr, convErr := plaid.ToPlaidError(err)
	if convErr != nil {
		return nil
	}
	return &plaidErr
}

func wrapPlaidError(msg string, err error) error {
	if plaidErr := extractPlaidError(err); plaidErr != nil {
		return fmt.Errorf("%s: plaid API error: %s - %s", msg, plaidErr.ErrorCode, plaidErr.ErrorMessage)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
