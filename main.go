package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ebfe/scard"
	"github.com/gregLibert/nfctarget/pkg/codec"
	"github.com/gregLibert/nfctarget/pkg/nfc"
	"github.com/gregLibert/nfctarget/pkg/pcsc"
	"github.com/gregLibert/nfctarget/pkg/tlv"
	"github.com/spf13/pflag"
)

type options struct {
	reader int
	format string
	decode string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err == pflag.ErrHelp {
		return
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	// Offline mode: decode a target captured earlier
	if opts.decode != "" {
		nt, err := decodeTarget(opts.decode)
		if err != nil {
			log.Fatalf("Error decoding target: %v", err)
		}
		if err := printTarget(os.Stdout, nt, opts.format); err != nil {
			log.Fatalf("Error printing target: %v", err)
		}
		return
	}

	// --- 1. Hardware Setup ---
	ctx, card := connectToCard(opts.reader)

	defer func() {
		if err := ctx.Release(); err != nil {
			log.Printf("Warning: Failed to release context: %v", err)
		}
	}()

	defer func() {
		if err := card.Disconnect(scard.LeaveCard); err != nil {
			log.Printf("Warning: Failed to disconnect card: %v", err)
		}
	}()

	// --- 2. Identify the card ---
	status, err := card.Status()
	if err != nil {
		log.Printf("Error reading card status: %v", err)
		return
	}

	atr, err := pcsc.ParseATR(status.Atr)
	if err != nil {
		log.Printf("Error parsing ATR %X: %v", status.Atr, err)
		return
	}
	fmt.Println(atr.Describe())

	// --- 3. Build the tagged target ---
	record, err := pcsc.ReadTarget(card, atr)
	if err != nil {
		log.Printf("Error reading target: %v", err)
		return
	}

	var nt nfc.Target
	record.Marshall(&nt)

	fmt.Printf("\n>> %s\n\n", record)
	if err := printTarget(os.Stdout, &nt, opts.format); err != nil {
		log.Printf("Error printing target: %v", err)
	}
}

// =========================================================================
// Helper Functions
// =========================================================================

func parseFlags(args []string) (options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("nfctarget", pflag.ContinueOnError)
	flagSet.IntVar(&opts.reader, "reader", 0, "index of the PC/SC reader to use")
	flagSet.StringVar(&opts.format, "format", "text", "output format: text, yaml, cbor or native")
	flagSet.StringVar(&opts.decode, "decode", "", "decode a hex encoded target (native layout or CBOR) instead of reading a card")

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}
	if len(flagSet.Args()) > 0 {
		return opts, fmt.Errorf("unexpected argument: %s", flagSet.Args()[0])
	}
	switch opts.format {
	case "text", "yaml", "cbor", "native":
	default:
		return opts, fmt.Errorf("unknown format %q", opts.format)
	}
	return opts, nil
}

// connectToCard handles the PC/SC context establishment and reader connection.
func connectToCard(index int) (*scard.Context, *scard.Card) {
	ctx, err := scard.EstablishContext()
	if err != nil {
		log.Fatalf("Error establishing context: %s", err)
	}

	readers, err := ctx.ListReaders()
	if err != nil || len(readers) <= index || index < 0 {
		if relErr := ctx.Release(); relErr != nil {
			log.Printf("Warning: Failed to release context during error handling: %v", relErr)
		}
		log.Fatalf("No smart card reader #%d found (%d available).", index, len(readers))
	}

	fmt.Printf(">> Using reader: %s\n", readers[index])

	// Contactless readers expose cards in the field as T=1
	card, err := ctx.Connect(readers[index], scard.ShareShared, scard.ProtocolT0|scard.ProtocolT1)
	if err != nil {
		if relErr := ctx.Release(); relErr != nil {
			log.Printf("Warning: Failed to release context during error handling: %v", relErr)
		}
		log.Fatalf("Error connecting to card: %s", err)
	}

	return ctx, card
}

// decodeTarget accepts a native nfc_target or a CBOR encoded target, in hex.
func decodeTarget(s string) (*nfc.Target, error) {
	data, err := tlv.ParseHex(s)
	if err != nil {
		return nil, err
	}

	var nt nfc.Target
	if len(data) == nfc.NativeTargetSize {
		err = nt.UnmarshalBinary(data)
	} else {
		err = codec.Unmarshal(data, &nt)
	}
	if err != nil {
		return nil, err
	}
	return &nt, nil
}

// printTarget writes nt to w in the requested format.
func printTarget(w io.Writer, nt *nfc.Target, format string) error {
	switch format {
	case "cbor":
		data, err := codec.Marshal(nt)
		if err != nil {
			return err
		}
		notation, err := codec.Diagnose(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n%s\n", strings.ToUpper(hex.EncodeToString(data)), notation)
		return err

	case "native":
		data, err := nt.MarshalBinary()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%X\n", data)
		return err
	}

	record, err := nfc.UnmarshallTarget(nt)
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		out, err := nfc.NewReport(record).YAML()
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "text":
		_, err = fmt.Fprintln(w, record.Describe())
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
