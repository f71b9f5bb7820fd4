package notify

import "fmt"

func confirmationSubject(brand string) string {
	return fmt.Sprintf("Booking Confirmation - %s", brand)
}

func confirmationBody(brand string, conf Confirmation) string {
	return fmt.Sprintf(`%s - Booking Confirmation

Hi %s,

Your appointment has been successfully booked!

Service: %s
Time: %s
Duration: %s

If you need to make any changes, please contact us as soon as possible.
`, brand, conf.Name, conf.ServiceName, conf.Timeslot, conf.Duration)
}
