package internalhttp

// fixtureEvents mirrors the upstream response shape: a flat array with the
// interview fields nested under user_det.
const fixtureEvents = `[
  {
    "id": 1,
    "desc": "1st Round",
    "start": "2025-08-29T17:00:00",
    "end": "2025-08-29T18:00:00",
    "link": "https://meet.example.com/django-r1",
    "user_det": {
      "job_id": {"jobRequest_Title": "django developer"},
      "handled_by": {"firstName": "Vinodini"}
    }
  },
  {
    "id": 2,
    "desc": "Test",
    "start": "2025-08-29T18:00:00",
    "end": "2025-08-29T19:00:00",
    "link": "https://meet.example.com/django-test",
    "user_det": {
      "job_id": {"jobRequest_Title": "django developer"},
      "handled_by": {"firstName": "Vinodini"}
    }
  },
  {
    "id": 3,
    "desc": "Interviewer",
    "start": "2025-08-29T19:00:00",
    "end": "2025-08-29T20:00:00",
    "link": "https://meet.example.com/django-r2",
    "user_det": {
      "job_id": {"jobRequest_Title": "django developer"},
      "handled_by": {"firstName": "Vinodini"}
    }
  },
  {
    "id": 4,
    "desc": "1st Round",
    "start": "2025-03-05T10:00:00",
    "end": "2025-03-05T11:00:00",
    "link": "https://meet.example.com/python-r1",
    "user_det": {
      "job_id": {"jobRequest_Title": "Python Developer"},
      "handled_by": {"firstName": "Geetha"}
    }
  },
  {
    "id": 5,
    "desc": "2nd Round",
    "start": "2025-03-06T10:00:00",
    "end": "2025-03-06T11:00:00",
    "link": "https://meet.example.com/python-r2",
    "user_det": {
      "job_id": {"jobRequest_Title": "Python Developer"},
      "handled_by": {"firstName": "Geetha"}
    }
  },
  {
    "id": 6,
    "desc": "3rd Round",
    "start": "2025-03-07T10:00:00",
    "end": "2025-03-07T11:00:00",
    "link": "https://meet.example.com/python-r3",
    "user_det": {
      "job_id": {"jobRequest_Title": "Python Developer"},
      "handled_by": {"firstName": "Geetha"}
    }
  },
  {
    "id": 7,
    "desc": "HR Round",
    "start": "2025-03-08T10:00:00",
    "end": "2025-03-08T11:00:00",
    "link": "https://meet.example.com/python-hr",
    "user_det": {
      "job_id": {"jobRequest_Title": "Python Developer"},
      "handled_by": {"firstName": "Geetha"}
    }
  },
  {
    "id": 8,
    "desc": "Offer Discussion",
    "start": "2025-03-09T10:00:00",
    "end": "2025-03-09T11:00:00",
    "link": "https://meet.example.com/python-offer",
    "user_det": {
      "job_id": {"jobRequest_Title": "Python Developer"},
      "handled_by": {"firstName": "Geetha"}
    }
  },
  {
    "id": 9,
    "desc": "1st Round",
    "start": "2025-08-20T18:00:00",
    "end": "2025-08-20T19:00:00",
    "link": "https://meet.example.com/django-aug-r1",
    "user_det": {
      "job_id": {"jobRequest_Title": "django developer"},
      "handled_by": {"firstName": "Vinodini"}
    }
  },
  {
    "id": 10,
    "desc": "Test",
    "start": "2025-08-27T18:00:00",
    "end": "2025-08-27T19:00:00",
    "link": "https://meet.example.com/django-aug-test",
    "user_det": {
      "job_id": {"jobRequest_Title": "django developer"},
      "handled_by": {"firstName": "Vinodini"}
    }
  }
]`
