package directory

const (
	imgLaptop  = "https://img.freepik.com/premium-photo/portrait-successful-confident-elegant-indian-arabian-young-businessman-suit-holding-open-laptop-his-hand-stand-near-desktop-his-modern-office-looking-camera-smiling_754108-631.jpg?size=626&ext=jpg&ga=GA1.1.426077606.1705393927&semt=ais"
	imgThumbs  = "https://img.freepik.com/free-photo/businessman-black-suit-makes-thumbs-up_114579-15900.jpg?size=626&ext=jpg&ga=GA1.1.426077606.1705393927&semt=ais"
	imgHipster = "https://img.freepik.com/free-photo/young-fashion-smiling-hipster-man-city-cafe-during-lunch-time-with-notebook-suit_158538-8185.jpg?size=626&ext=jpg&ga=GA1.1.426077606.1705393927&semt=ais"
)

// Default returns the built-in directory used when no file is configured.
func Default() Directory {
	return New([]Entry{
		{ID: 1, Label: "Nick Giannopoulos", Image: imgLaptop, MailID: "nick@example.com"},
		{ID: 2, Label: "John Doe", Image: imgThumbs, MailID: "john@example.com"},
		{ID: 3, Label: "Jane Smith", Image: imgHipster, MailID: "jane@example.com"},
		{ID: 4, Label: "Vamsi", Image: imgLaptop, MailID: "vamsi@example.com"},
		{ID: 5, Label: "NagRaj", Image: imgThumbs, MailID: "nag@example.com"},
	})
}
