// Manual smoke test for the notes API. Run against a live server:
//
//	go run scripts/smoke_api.go -email demo@example.com -password secret
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"

	"github.com/fatih/color"
)

var baseURL = flag.String("base", "http://localhost:3000", "server base URL")

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func sendJSON(client *http.Client, method, path string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, *baseURL+path, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "login password")
	flag.Parse()

	jar, _ := cookiejar.New(nil)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	color.Cyan("🚀 Starting Notes API Smoke Test\n")

	// 1. Health
	color.Yellow("\n1. Health check")
	resp, body, err := sendJSON(client, "GET", "/health", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 2. Login (form post, expect 302 to /dashboard)
	color.Yellow("\n2. Login")
	form := url.Values{"email": {*email}, "password": {*password}}
	resp, err = client.Post(*baseURL+"/login", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		color.Red("Expected 302, got %s", resp.Status)
		os.Exit(1)
	}
	color.Green("Status: %s -> %s", resp.Status, resp.Header.Get("Location"))

	// 3. Create folder (form post)
	color.Yellow("\n3. Create folder")
	form = url.Values{"name": {"Smoke Test Folder"}}
	resp, err = client.Post(*baseURL+"/create_folder", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	resp.Body.Close()
	color.Green("Status: %s", resp.Status)

	// 4. Summarize
	color.Yellow("\n4. Summarize")
	resp, body, err = sendJSON(client, "POST", "/summarize", map[string]interface{}{
		"content": "Milk, eggs, bread. Also remember to call the plumber about the kitchen sink on Tuesday.",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 5. Logout
	color.Yellow("\n5. Logout")
	resp, _, err = sendJSON(client, "GET", "/logout", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	color.Cyan("\n✅ Smoke test finished")
}
