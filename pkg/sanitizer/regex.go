package sanitizer

import "regexp"

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	// Candidate tags and comment openers. Whether a candidate is markup is
	// decided by htmlElements.
	tagRegex = regexp.MustCompile(`<!--|</?([a-zA-Z][a-zA-Z0-9]*)(?:\s[^<>]*)?/?>`)
)

var htmlElements = map[string]bool{
	"a": true, "abbr": true, "address": true, "area": true, "article": true, "aside": true,
	"audio": true, "b": true, "base": true, "bdi": true, "bdo": true, "blockquote": true,
	"body": true, "br": true, "button": true, "canvas": true, "caption": true, "cite": true,
	"code": true, "col": true, "colgroup": true, "data": true, "datalist": true, "dd": true,
	"del": true, "details": true, "dfn": true, "dialog": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "fieldset": true, "figcaption": true, "figure": true,
	"font": true, "footer": true, "form": true, "frame": true, "frameset": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "head": true, "header": true,
	"hr": true, "html": true, "i": true, "iframe": true, "img": true, "input": true, "ins": true,
	"kbd": true, "label": true, "legend": true, "li": true, "link": true, "main": true,
	"map": true, "mark": true, "marquee": true, "math": true, "menu": true, "meta": true,
	"meter": true, "nav": true, "noscript": true, "object": true, "ol": true, "optgroup": true,
	"option": true, "output": true, "p": true, "param": true, "picture": true, "pre": true,
	"progress": true, "q": true, "rp": true, "rt": true, "ruby": true, "s": true, "samp": true,
	"script": true, "section": true, "select": true, "slot": true, "small": true, "source": true,
	"span": true, "strong": true, "style": true, "sub": true, "summary": true, "sup": true,
	"svg": true, "table": true, "tbody": true, "td": true, "template": true, "textarea": true,
	"tfoot": true, "th": true, "thead": true, "time": true, "title": true, "tr": true,
	"track": true, "u": true, "ul": true, "var": true, "video": true, "wbr": true,
}
