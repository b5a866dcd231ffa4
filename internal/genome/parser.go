package genome

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parser reads marker observations from a direct-to-consumer raw genotype
// file: tab-separated rsid, chromosome, position, genotype rows with
// #-prefixed header comments. Some vendors emit the genotype as two
// whitespace-separated single-symbol columns; both layouts are accepted.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
}

// NewParser creates a parser for the given file. Supports plain and gzipped
// files, and "-" for stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open genotype file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read genotype file: %w", err)
	}

	if _, err = file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek genotype file: %w", err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// Next reads the next observation. Header comments, blank lines, and
// no-call rows are skipped. Returns nil, nil at end of input.
func (p *Parser) Next() (*Observation, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read genotype line: %w", err)
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		o, perr := p.parseLine(line)
		if perr != nil {
			return nil, perr
		}
		if o == nil {
			// no-call row
			if err == io.EOF {
				return nil, nil
			}
			continue
		}
		return o, nil
	}
}

// parseLine parses a single data row. Returns nil, nil for rows whose
// genotype is not a valid nucleotide observation.
func (p *Parser) parseLine(line string) (*Observation, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("expected at least 4 columns, found %d", len(fields)),
		}
	}

	pos, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("invalid position: %s", fields[2]),
		}
	}

	// Two-column genotypes ("A G") collapse into one string.
	genotype := strings.ToUpper(fields[3])
	if len(fields) > 4 {
		genotype += strings.ToUpper(fields[4])
	}

	if !ValidGenotype(genotype) {
		return nil, nil
	}

	return &Observation{
		MarkerID: fields[0],
		Chrom:    fields[1],
		Pos:      pos,
		Genotype: genotype,
	}, nil
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseError represents an error during genotype file parsing with line
// context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("genotype parse error at line %d: %s", e.Line, e.Message)
}
