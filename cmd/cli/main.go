package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankcore-cli",
		Short: "Bankcore CLI tool",
		Long:  `A command line interface for interacting with the Bankcore ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Bankcore API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var currencies string
	openCmd := &cobra.Command{
		Use:   "open <customer-id> <country>",
		Short: "Open an account with one balance per currency",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			openAccount(args[0], args[1], strings.Split(currencies, ","))
		},
	}
	openCmd.Flags().StringVar(&currencies, "currencies", "EUR", "Comma-separated currency codes")

	showCmd := &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show an account and its balances",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0])
		},
	}

	statementCmd := &cobra.Command{
		Use:   "statement <account-id>",
		Short: "List an account's transactions in creation order",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0] + "/transactions")
		},
	}

	accountCmd.AddCommand(openCmd, showCmd, statementCmd)
	rootCmd.AddCommand(accountCmd)

	// Transaction commands
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}

	var description string
	depositCmd := &cobra.Command{
		Use:   "deposit <account-id> <amount> <currency>",
		Short: "Move money into an account balance",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			applyTransaction(args[0], args[1], args[2], "IN", description)
		},
	}
	depositCmd.Flags().StringVar(&description, "description", "deposit", "Transaction description")

	var outDescription string
	withdrawCmd := &cobra.Command{
		Use:   "withdraw <account-id> <amount> <currency>",
		Short: "Move money out of an account balance",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			applyTransaction(args[0], args[1], args[2], "OUT", outDescription)
		},
	}
	withdrawCmd.Flags().StringVar(&outDescription, "description", "withdrawal", "Transaction description")

	txCmd.AddCommand(depositCmd, withdrawCmd)
	rootCmd.AddCommand(txCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func openAccount(customerID, country string, currencies []string) {
	payload := map[string]any{
		"customer_id": customerID,
		"country":     country,
		"currencies":  currencies,
	}
	postJSON("/api/v1/accounts", payload)
}

func applyTransaction(accountID, amount, currency, direction, description string) {
	payload := map[string]any{
		"account_id":  accountID,
		"amount":      amount,
		"currency":    currency,
		"direction":   direction,
		"description": description,
	}
	postJSON("/api/v1/transactions", payload)
}

func postJSON(path string, payload map[string]any) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Println(pretty.String())
}
