package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ErrorFallback renders the page-level error boundary: a localized fallback
// with a manual retry (reload) and a return-home escape hatch. Served for
// non-API routes when a handler panics or fails unexpectedly.
func ErrorFallback(statusCode int, messageTH, messageEN string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="th">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>CampSiam - %d</title>
</head>
<body>
  <main style="max-width:32rem;margin:4rem auto;text-align:center;font-family:sans-serif">
    <h1>%d</h1>
    <p lang="th">%s</p>
    <p lang="en">%s</p>
    <p>
      <a href="javascript:location.reload()">ลองใหม่ / Try again</a>
      &nbsp;|&nbsp;
      <a href="/">กลับหน้าหลัก / Return home</a>
    </p>
  </main>
</body>
</html>`, statusCode, statusCode, templ.EscapeString(messageTH), templ.EscapeString(messageEN))
		return err
	})
}

// NotFound is the fallback for unknown public paths.
func NotFound() templ.Component {
	return ErrorFallback(404, "ไม่พบหน้าที่คุณต้องการ", "The page you are looking for does not exist.")
}

// InternalError is the fallback for unexpected handler failures.
func InternalError() templ.Component {
	return ErrorFallback(500, "เกิดข้อผิดพลาด กรุณาลองใหม่อีกครั้ง", "Something went wrong. Please try again.")
}
