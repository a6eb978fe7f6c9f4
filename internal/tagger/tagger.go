// Package tagger embeds season metadata into MKV files using mkvpropedit.
package tagger

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
)

const binaryName = "mkvpropedit"

// SeasonTag contains the metadata to embed into an organized MKV file.
type SeasonTag struct {
	Show   string // Series name (Matroska tag: SHOW)
	Season int    // Season number (PART_NUMBER on the SEASON target)
}

// IsAvailable returns true if mkvpropedit is found in $PATH.
func IsAvailable() bool {
	_, err := exec.LookPath(binaryName)
	return err == nil
}

// TagFile embeds the season metadata into a single MKV file.
// Non-MKV files are silently skipped (returns nil).
func TagFile(ctx context.Context, path string, tag SeasonTag) error {
	if !isMKV(path) {
		return nil
	}

	// mkvpropedit takes global tags only via an XML file
	tmpFile, err := os.CreateTemp("", "seasonsort-tags-*.xml")
	if err != nil {
		return fmt.Errorf("failed to create temp tag file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if err := writeTagXML(tmpFile, tag); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write tag XML: %w", err)
	}
	tmpFile.Close()

	args := []string{
		path,
		"--tags", fmt.Sprintf("all:%s", tmpFile.Name()),
	}

	cmd := exec.CommandContext(ctx, binaryName, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("mkvpropedit failed: %w\noutput: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// isMKV returns true if the file has an .mkv extension.
func isMKV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".mkv")
}

// tagXMLTemplate is the Matroska global tag XML format. Target type value 60
// is the season level, 70 the collection (series) level.
const tagXMLTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE Tags SYSTEM "matroskatags.dtd">
<Tags>{{if .Show}}
  <Tag>
    <Targets>
      <TargetTypeValue>70</TargetTypeValue>
      <TargetType>COLLECTION</TargetType>
    </Targets>
    <Simple>
      <Name>TITLE</Name>
      <String>{{.Show}}</String>
    </Simple>
  </Tag>{{end}}
  <Tag>
    <Targets>
      <TargetTypeValue>60</TargetTypeValue>
      <TargetType>SEASON</TargetType>
    </Targets>
    <Simple>
      <Name>PART_NUMBER</Name>
      <String>{{.Season}}</String>
    </Simple>
  </Tag>
</Tags>
`

var tagTmpl = template.Must(template.New("tags").Parse(tagXMLTemplate))

func writeTagXML(f *os.File, tag SeasonTag) error {
	return tagTmpl.Execute(f, tag)
}
