package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/ThanawatK/CampSiam/app/models"
	"github.com/ThanawatK/CampSiam/app/repository"
)

// HandleAdminExportCampsites streams every listing as an XLSX workbook.
func HandleAdminExportCampsites(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCampsiteRepository()
	campsites, err := repo.ListAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load campsites")
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Campsites"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Name (EN)", "Type", "Province", "Status", "Owner", "Price Min", "Price Max", "Views", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, cs := range campsites {
		ownerName := ""
		if cs.Owner.ID != 0 {
			ownerName = cs.Owner.Name
		}
		values := []interface{}{
			cs.ID, cs.Name, cs.NameEN, cs.Type, cs.Province, cs.Status,
			ownerName, cs.PriceMin, cs.PriceMax, cs.ViewCount,
			cs.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return sendWorkbook(c, f, "campsites")
}

// HandleAdminExportInquiries streams every booking inquiry as an XLSX
// workbook.
func HandleAdminExportInquiries(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetInquiryRepository()
	inquiries, err := repo.ListAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load inquiries")
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Inquiries"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Campsite", "Guest", "Email", "Status", "Replied", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, inq := range inquiries {
		campsiteName := ""
		if inq.Campsite != nil {
			campsiteName = inq.Campsite.Name
		}
		values := []interface{}{
			inq.ID, campsiteName, inq.GuestName, inq.GuestEmail, inq.Status,
			formatReplied(&inq), inq.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return sendWorkbook(c, f, "inquiries")
}

func formatReplied(inq *models.Inquiry) string {
	if inq.RepliedAt == nil {
		return ""
	}
	return inq.RepliedAt.Format("2006-01-02 15:04")
}

func sendWorkbook(c *fiber.Ctx, f *excelize.File, name string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to build workbook")
	}

	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
