package rest

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ExpandTemplate substitutes the positional placeholders {0}..{n} in template
// with params. Placeholders before the first '?' are path-escaped, the rest are
// query-escaped. Every placeholder must have a parameter.
func ExpandTemplate(template string, params ...any) (string, error) {
	var sb strings.Builder
	inQuery := false

	for i := 0; i < len(template); i++ {
		ch := template[i]
		if ch == '?' {
			inQuery = true
		}
		if ch != '{' {
			sb.WriteByte(ch)
			continue
		}

		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in %q", template)
		}
		index, err := strconv.Atoi(template[i+1 : i+end])
		if err != nil {
			return "", fmt.Errorf("malformed placeholder %q in %q", template[i:i+end+1], template)
		}
		if index < 0 || index >= len(params) {
			return "", fmt.Errorf("no parameter for placeholder {%d} in %q", index, template)
		}

		value := formatParam(params[index])
		if inQuery {
			sb.WriteString(url.QueryEscape(value))
		} else {
			sb.WriteString(url.PathEscape(value))
		}
		i += end
	}

	return sb.String(), nil
}

func formatParam(p any) string {
	switch v := p.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return strconv.FormatInt(v.UnixMilli(), 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
