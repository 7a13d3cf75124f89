// Command qrgen writes the payment QR image sent by /premium.
package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/skip2/go-qrcode"
	flag "github.com/spf13/pflag"

	"neethelper/pkg/assets"
	"neethelper/pkg/utils"
)

func main() {
	defer utils.LogOutput(os.Stdout)()

	payee := flag.String("payee", "9907843768@ybl", "UPI virtual payment address")
	name := flag.String("name", "NEETHelper24x7", "payee name shown by the payment app")
	amount := flag.String("amount", "", "fixed amount in INR, empty lets the payer choose")
	note := flag.String("note", "NEET Premium", "transaction note")
	out := flag.StringP("out", "o", "assets/qr.png", "output PNG path")
	size := flag.IntP("size", "s", 512, "image width and height in pixels")
	level := flag.StringP("level", "l", "medium", "error correction: low, medium, high, highest")
	printReport := flag.Bool("report", false, "print the inspection report as JSON")
	flag.Parse()

	recovery, err := parseLevel(*level)
	if err != nil {
		log.Fatal("Invalid recovery level", "error", err)
	}

	uri := upiURI(*payee, *name, *amount, *note)
	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatal("Failed to create output folder", "error", err)
	}
	if err := qrcode.WriteFile(uri, recovery, *size, *out); err != nil {
		log.Fatal("Failed to write QR code", "path", *out, "error", err)
	}

	report, err := assets.Inspect(*out)
	if err != nil {
		log.Fatal("Failed to read back QR code", "path", *out, "error", err)
	}
	if !report.Scannable() {
		log.Warn("QR code has low contrast", "contrast", report.Contrast)
	}
	log.Info("Wrote payment QR", "path", *out, "uri", uri, "width", report.Width, "height", report.Height)

	if *printReport {
		if err := writeReport(os.Stdout, report); err != nil {
			log.Fatal("Failed to print report", "error", err)
		}
	}
}

func writeReport(w io.Writer, report assets.Report) error {
	return utils.EncodeIndent(w, report, "  ")
}

// upiURI builds a upi://pay deep link understood by Indian payment apps.
func upiURI(payee, name, amount, note string) string {
	query := url.Values{}
	query.Set("pa", payee)
	if name != "" {
		query.Set("pn", name)
	}
	if amount != "" {
		query.Set("am", amount)
		query.Set("cu", "INR")
	}
	if note != "" {
		query.Set("tn", note)
	}
	return "upi://pay?" + query.Encode()
}

func parseLevel(level string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(level) {
	case "low", "l":
		return qrcode.Low, nil
	case "medium", "m":
		return qrcode.Medium, nil
	case "high", "q":
		return qrcode.High, nil
	case "highest", "h":
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("unknown level %q", level)
	}
}
