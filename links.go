package archipelago

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoLinks is returned when a link registry would be empty.
var ErrNoLinks = errors.New("archipelago: link list is empty")

// DefaultLinks is the built-in island reading list.
var DefaultLinks = []string{
	"https://www.insula.nu/",
	"https://www.vladi-private-islands.de/en/",
	"https://www.isisa.org/",
	"https://islandstudies.jp/jsis/",
	"https://www.sicri-network.org/do-casinos-belong-on-small-islands-the-impact-of-gambling-on-paradise/",
	"https://www.youtube.com/watch?v=bc9qxyf_suI",
	"https://www.youtube.com/watch?v=etdb8-v2enI",
	"https://www.youtube.com/watch?v=_rSsP_gUwJk",
	"https://www.dagensps.se/weekend/varldens-minsta-bebodda-o-inga-grannar-har/",
	"https://upload.wikimedia.org/wikipedia/commons/7/78/Map_by_nicolo_zeno_1558.jpg",
	"https://en.wikipedia.org/wiki/Phantom_island",
	"https://upload.wikimedia.org/wikipedia/commons/b/be/Albino_de_Canepa_1489_Antillia_Roillo.jpg",
	"https://www.arcus-atlantis.org.uk/horizons/islands-of-the-blessed-and-cursed.html",
	"https://www.arcus-atlantis.org.uk/horizons/antillia.html#satanazes",
	"https://www.youtube.com/watch?v=Janx8WPCuYw",
	"https://www.svtplay.se/video/KZm7v4M/ogonblick-fran-svalbard/1-bamsebu-sett-fran-luften?video=visa&position=1",
	"https://www.nauru.gov.nr/",
	"https://www.tjust.com/",
}

// LinkRegistry hands out links round-robin. The cursor only moves when a
// body is actually committed.
type LinkRegistry struct {
	links []string
	next  int
}

// NewLinkRegistry copies links into a new registry with the cursor at 0.
func NewLinkRegistry(links []string) (*LinkRegistry, error) {
	if len(links) == 0 {
		return nil, ErrNoLinks
	}
	return &LinkRegistry{links: append([]string(nil), links...)}, nil
}

// Len returns the number of links.
func (r *LinkRegistry) Len() int {
	return len(r.links)
}

// Cursor returns the index of the link the next commit will receive.
func (r *LinkRegistry) Cursor() int {
	return r.next
}

// Peek returns the link the next commit will receive without advancing.
func (r *LinkRegistry) Peek() string {
	return r.links[r.next]
}

// Next returns the link at the cursor and advances it by one, wrapping.
func (r *LinkRegistry) Next() string {
	link := r.links[r.next]
	r.next = (r.next + 1) % len(r.links)
	return link
}

// Links returns a copy of the registry's links in order.
func (r *LinkRegistry) Links() []string {
	return append([]string(nil), r.links...)
}

// ReadLinks parses one URI per line. Blank lines and lines starting with '#'
// are skipped; surrounding whitespace is trimmed.
func ReadLinks(rd io.Reader) ([]string, error) {
	var links []string
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		links = append(links, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("archipelago: read links: %w", err)
	}
	if len(links) == 0 {
		return nil, ErrNoLinks
	}
	return links, nil
}
