package payments

import (
	"time"

	"courtside/app/aggregate"
	"courtside/app/models"
	"courtside/app/routes/auth"
	"courtside/app/store"

	"github.com/gofiber/fiber/v2"
)

func ListPaymentsAPI(c *fiber.Ctx) error {
	q, err := queryFromCtx(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	payments, err := loadPayments(auth.OwnerID(c))
	if err != nil {
		if models.IsValidation(err) {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
	}
	return c.JSON(aggregate.Filter(payments, q, time.Now()))
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	payment.ID = ""
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	payment.CreatedAt = time.Now().UnixMilli()
	if payment.Status == models.PaymentStatusCompleted && payment.PaidAt == 0 {
		payment.PaidAt = payment.CreatedAt
	}
	if err := models.Validate(payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	key, err := records.Append(store.PaymentsPath(auth.OwnerID(c)), payment)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	payment.ID = key
	return c.Status(201).JSON(payment)
}

// PendingPaymentsAPI splits pending payments into overdue and upcoming
// relative to now. Payments without a due date are never overdue.
func PendingPaymentsAPI(c *fiber.Ctx) error {
	payments, err := loadPayments(auth.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
	}

	overdue, upcoming := aggregate.PartitionPending(payments, time.Now())
	return c.JSON(fiber.Map{
		"overdue":  overdue,
		"upcoming": upcoming,
	})
}

func PaymentStatsAPI(c *fiber.Ctx) error {
	payments, err := loadPayments(auth.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
	}

	income, expenses := aggregate.Totals(payments)
	pendingCount := 0
	for _, p := range payments {
		if p.Status == models.PaymentStatusPending {
			pendingCount++
		}
	}

	return c.JSON(fiber.Map{
		"totalIncome":   income,
		"totalExpenses": expenses,
		"net":           income - expenses,
		"pendingCount":  pendingCount,
		"monthly":       aggregate.MonthlyBuckets(payments),
	})
}

func UpdatePaymentAPI(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	partial := map[string]interface{}{}
	for _, field := range []string{"amount", "type", "category", "status", "description", "studentId", "trainerId", "dueDate", "paidAt"} {
		if v, ok := body[field]; ok {
			partial[field] = v
		}
	}
	if len(partial) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nothing to update"})
	}

	// Reject values the read-side decode would refuse, so one bad
	// update cannot poison every later read of the collection.
	path := store.PaymentsPath(auth.OwnerID(c)) + "/" + c.Params("paymentId")
	raw, err := records.Get(path)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payment"})
	}
	var merged models.Payment
	if err := models.CheckMerge("payment", c.Params("paymentId"), raw, partial, &merged); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := records.Update(path, partial); err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update payment"})
	}
	return c.JSON(fiber.Map{"message": "Payment updated"})
}

// CompletePaymentAPI marks a pending payment as paid now.
func CompletePaymentAPI(c *fiber.Ctx) error {
	path := store.PaymentsPath(auth.OwnerID(c)) + "/" + c.Params("paymentId")
	partial := map[string]interface{}{
		"status": models.PaymentStatusCompleted,
		"paidAt": time.Now().UnixMilli(),
	}
	if err := records.Update(path, partial); err != nil {
		if err == store.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to complete payment"})
	}
	return c.JSON(fiber.Map{"message": "Payment completed"})
}

func DeletePaymentAPI(c *fiber.Ctx) error {
	path := store.PaymentsPath(auth.OwnerID(c)) + "/" + c.Params("paymentId")
	if err := records.Remove(path); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	return c.JSON(fiber.Map{"message": "Payment deleted"})
}
